package ai

const (
	MODEL_BASE_LANGUAGE_CN = "CN"
	MODEL_BASE_LANGUAGE_EN = "EN"
)

type ModelName struct {
	ChatModel string
}

type Lang interface {
	Lang() string
}

// GenerateResponse is one prose completion from a chat driver.
type GenerateResponse struct {
	Received string `json:"received"`
	Model    string `json:"model"`

	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

func (r GenerateResponse) Message() string {
	return r.Received
}
