package gogit

// AdvertisedHead exports advertisedHead for testing.
var AdvertisedHead = advertisedHead //nolint:gochecknoglobals // test export
