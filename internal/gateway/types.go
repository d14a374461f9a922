package gateway

// Запрос к chat-completions API шлюза.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// Сообщение диалога. Content — строка для системного сообщения
// или список частей для пользовательского сообщения с фотографией.
type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// Часть пользовательского сообщения: текст или ссылка на изображение.
type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

// Ответ chat-completions API шлюза.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
