package diagram

// Kind is the visual category of a node: the cloud service or actor it
// stands for. It takes the place of an icon, so it also carries the shape and
// colors used when the node is drawn.
type Kind struct {
	Provider string // e.g. "aws", "azure", "generic"
	Category string // e.g. "storage", "integration"
	Name     string // service name, e.g. "S3"

	Shape     string // DOT shape; "box" when empty
	FillColor string // DOT fillcolor; "white" when empty
	FontColor string // DOT fontcolor; "#2D3436" when empty
}

// String returns the dotted path of the kind, e.g. "aws.storage.S3".
func (k Kind) String() string {
	return k.Provider + "." + k.Category + "." + k.Name
}

// IsZero reports whether k is the zero Kind.
func (k Kind) IsZero() bool { return k == Kind{} }
