package validate

// ParseError reports that the document is not well-formed XML. It is
// terminal for the document: no checks run and the report degrades to the
// message-only shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "XML parsing error: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// GenericError reports any other failure while processing a document, such
// as a traversal limit being exceeded. Terminal, like ParseError.
type GenericError struct {
	Err error
}

func (e *GenericError) Error() string { return "Error: " + e.Err.Error() }
func (e *GenericError) Unwrap() error { return e.Err }
