package application

// ListOptions provides filtering options for listing applications.
type ListOptions struct {
	Statuses []Status
	Limit    int
	Offset   int
}
