package trash

// MoveByCopy exports moveByCopy for testing.
var MoveByCopy = moveByCopy //nolint:gochecknoglobals // test export

// MountPoint exports mountPoint for testing.
var MountPoint = mountPoint //nolint:gochecknoglobals // test export

// VolumeTrashRoot exports volumeTrashRoot for testing.
var VolumeTrashRoot = volumeTrashRoot //nolint:gochecknoglobals // test export
