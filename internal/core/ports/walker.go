package ports

// Walker defines the interface for enumerating the input tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// Walk returns all file paths under root in lexical order, skipping
	// names matching the ignore patterns.
	Walk(root string, ignores []string) ([]string, error)
}
