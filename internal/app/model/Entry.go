package model

// Entry is one saved collection record: a single submitted recording plus
// its transcript, transliteration and metadata. Field names match the
// on-disk JSON layout of the collection file.
type Entry struct {
	// ID is a UTC timestamp token assigned at intake time. It doubles as
	// the upload filename prefix, so it is unique per entry at second
	// resolution.
	ID              string `json:"id"`
	Title           string `json:"title"`
	Performer       string `json:"performer"`
	Location        string `json:"location"`
	Context         string `json:"context"`
	DateOfRecording string `json:"date_of_recording"`
	UploadedAt      string `json:"uploaded_at"`
	AudioPath       string `json:"audio_path"`
	Transcript      string `json:"transcript"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	DetectedLang    string `json:"detected_language"`
	// ConsentGivenAt records when the operator affirmed consent, stamped
	// at the moment of persistence. Empty on records written by older
	// versions that kept no consent audit trail.
	ConsentGivenAt string `json:"consent_given_at,omitempty"`
}
