package entity

// File is an inbound image before it reaches the blob store.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// BlobObject is a stored image read back from the blob store.
type BlobObject struct {
	Data        []byte
	ContentType string
}
