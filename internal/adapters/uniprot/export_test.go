package uniprot

// StripDefaultNamespace exposes stripDefaultNamespace for testing.
var StripDefaultNamespace = stripDefaultNamespace
