package model

// Direction selects which of the two supported language pairs a translation
// call targets.
type Direction string

const (
	DirectionFrEn Direction = "fr-en"
	DirectionEnFr Direction = "en-fr"
)

// Valid reports whether the direction is one of the two supported values.
func (d Direction) Valid() bool {
	return d == DirectionFrEn || d == DirectionEnFr
}

// TranslateRequest represents a translation request body.
type TranslateRequest struct {
	Text      string    `json:"text"`
	Direction Direction `json:"direction"`
}

// TranslateResponse represents a successful translation response.
type TranslateResponse struct {
	Translation string `json:"translation"`
}
