package ports

// Hasher defines the interface for computing content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashContent computes the digest of in-memory content.
	HashContent(content string) string

	// HashFile computes the digest of a file's content on disk.
	HashFile(path string) (string, error)
}
