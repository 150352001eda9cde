package domain

// Context is a snapshot of parameters carried over from a previous
// conversational turn. The platform creates and expires contexts; the
// webhook only reads them.
type Context struct {
	Name          string         `json:"name"`
	LifespanCount int            `json:"lifespanCount,omitempty"`
	Parameters    map[string]any `json:"parameters,omitempty"`
}

type QueryResult struct {
	Parameters     map[string]any `json:"parameters"`
	Intent         map[string]any `json:"intent"`
	OutputContexts []Context      `json:"outputContexts,omitempty"`
}

type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
}

type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}
