package completion

// Message is a single chat message sent to the API
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat completions request body. Temperature is always
// serialized so that an explicit 0 reaches the API.
type Request struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []Message `json:"messages"`
}
