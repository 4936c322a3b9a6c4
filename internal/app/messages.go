package app

// errStatus formats an arbitrary error for the status line.
func errStatus(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}
