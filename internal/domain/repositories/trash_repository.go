package repositories

// TrashRepository performs the recoverable delete of a working copy.
type TrashRepository interface {
	Trash(path string) error
}
