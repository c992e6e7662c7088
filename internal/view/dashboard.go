package view

// DashboardPage is the view model for the dashboard. The two lists
// are independent: one failing leaves the other fully rendered.
type DashboardPage struct {
	Greeting  string `json:"greeting"`
	ShowAdmin bool   `json:"show_admin"`
	Important List   `json:"important"`
	Pinned    List   `json:"pinned"`
}

// Greeting returns "Hello, {name}" or the bare fallback when no name
// is known (missing profile or empty name field).
func Greeting(name string) string {
	if name == "" {
		return "Hello!"
	}
	return "Hello, " + name
}
