package formatters

// DefaultFormat is the format used when the user does not ask for another.
const DefaultFormat = "json"
