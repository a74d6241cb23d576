package components

const (
	CardHeight            = 4  // CardHeight is the fixed height of a rendered card
	cardTitleMaxLength    = 30 // Maximum display length for card title before truncation
	cardTitlePaddedLength = 33 // Total padded length including ellipsis space
)
