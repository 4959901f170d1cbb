package domain

// Raw research records mirror the JSON artifacts the external fetchers
// produce. They are the pipeline's input before normalisation; fields
// absent in the artifact decode to zero values and are handled by the
// normaliser's malformed-record tolerance.

// WebSource is one scraped web page as reported by the web fetcher.
type WebSource struct {
	// URL is the page location.
	URL string `json:"url"`

	// Title is the extracted page title.
	Title string `json:"title"`

	// Content is the extracted page text.
	Content string `json:"content"`

	// CharacterCount is the fetcher-reported content length.
	CharacterCount int `json:"character_count"`

	// ExtractionDate is when the page was scraped (ISO 8601).
	ExtractionDate string `json:"extraction_date"`
}

// WebResearch is the web fetcher's complete output artifact.
type WebResearch struct {
	// ResearchDate is when the research run happened (ISO 8601).
	ResearchDate string `json:"research_date"`

	// TotalSources is the fetcher-reported source count.
	TotalSources int `json:"total_sources"`

	// Sources holds the scraped pages in fetch order.
	Sources []WebSource `json:"sources"`
}

// TranscriptSegment is one timed slice of a video transcript.
type TranscriptSegment struct {
	// Start is the segment offset in seconds.
	Start float64 `json:"start"`

	// Duration is the segment length in seconds.
	Duration float64 `json:"duration"`

	// Text is the segment text.
	Text string `json:"text"`
}

// VideoTranscript is one transcribed video as reported by the
// transcript fetcher.
type VideoTranscript struct {
	// VideoID is the platform video identifier.
	VideoID string `json:"video_id"`

	// SourceURL is the video location.
	SourceURL string `json:"source_url"`

	// Language is the transcript language code.
	Language string `json:"language"`

	// Text is the full transcript text.
	Text string `json:"text"`

	// WordCount is the fetcher-reported word count.
	WordCount int `json:"word_count"`

	// TotalDuration is the video length in seconds.
	TotalDuration float64 `json:"total_duration"`

	// Segments holds the timed transcript slices.
	Segments []TranscriptSegment `json:"segments"`
}

// VideoResearch is the transcript fetcher's complete output artifact.
type VideoResearch struct {
	// TranscriptionDate is when the transcription run happened (ISO 8601).
	TranscriptionDate string `json:"transcription_date"`

	// SuccessfulTranscriptions is the fetcher-reported success count.
	SuccessfulTranscriptions int `json:"successful_transcriptions"`

	// Transcriptions holds the transcribed videos in fetch order.
	Transcriptions []VideoTranscript `json:"transcriptions"`
}
