package transport

// CompleteRequest marks a callback done or reopens it. An empty body
// defaults to completed.
type CompleteRequest struct {
	Completed bool `json:"completed"`
}
