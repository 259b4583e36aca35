package content

// isValidSlug строчные латинские буквы, цифры и дефисы, без пустоты.
func isValidSlug(slug string) bool {
	if slug == "" {
		return false
	}

	for _, char := range slug {
		switch {
		case char >= 'a' && char <= 'z':
		case char >= '0' && char <= '9':
		case char == '-':
		default:
			return false
		}
	}
	return true
}
