package domain

// LineType is one taxonomy entry: a class of wager (e.g. "Match Result") with
// its selectable options. Identifiers are unique within a taxonomy set.
// Field names follow the upstream Init API payload.
type LineType struct {
	ID                int    `json:"ID"`
	AliasName         string `json:"AliasName,omitempty"`
	Name              string `json:"Name"`
	SName             string `json:"SName,omitempty"`
	Title             string `json:"Title,omitempty"`
	RelatedEntityType string `json:"RelatedEntityType,omitempty"`

	PrematchState bool `json:"PrematchState"`
	InPlayState   bool `json:"InPlayState"`

	SportTypes []int `json:"SportTypes,omitempty"`

	Predictable                *bool `json:"Predictable,omitempty"`
	HomeAwayTeamOrderSensitive *bool `json:"HomeAwayTeamOrderSensitive,omitempty"`

	Options []LineTypeOption `json:"Options,omitempty"`

	ImgVer                *int   `json:"ImgVer,omitempty"`
	ParameterType         *int   `json:"ParameterType,omitempty"`
	PredictionTitle       string `json:"PredictionTitle,omitempty"`
	PredictionRequireOdds *bool  `json:"PredictionRequireOdds,omitempty"`
}

// LineTypeOption is one selectable outcome of a line type (Home / Away /
// Over / Under and so on).
type LineTypeOption struct {
	Num   int    `json:"Num"`
	Name  string `json:"Name"`
	Order int    `json:"Order"`

	Competitor        *int   `json:"Competitor,omitempty"`
	Template          string `json:"Template,omitempty"`
	Logo              string `json:"Logo,omitempty"`
	Title             string `json:"Title,omitempty"`
	Abbreviation      string `json:"Abbreviation,omitempty"`
	PredictionsVisual string `json:"PredictionsVisual,omitempty"`
	IsVirtual         *bool  `json:"IsVirtual,omitempty"`
}
