package view

// Notifier shows a transient user notification. Implementations adapt
// a concrete toast/alert widget; kind is success, warning or danger.
type Notifier interface {
	Notify(title, body, kind string)
}

// Chart consumes the sales series and is destroyed before each redraw
type Chart interface {
	Render(labels []string, values []float64)
	Destroy()
}
