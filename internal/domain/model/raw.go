package model

// RawVideoInfo is the loosely typed attribute bag the upstream extractor
// returns for a video or a search run. Optional fields are pointers so
// "unknown" survives into shaping instead of collapsing to a zero value.
type RawVideoInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	WebpageURL  string   `json:"webpage_url"`
	Duration    *float64 `json:"duration"`
	ViewCount   *int64   `json:"view_count"`
	LikeCount   *int64   `json:"like_count"`
	Uploader    string   `json:"uploader"`
	Channel     string   `json:"channel"`
	ChannelID   *string  `json:"channel_id"`
	ChannelURL  *string  `json:"channel_url"`
	UploadDate  *string  `json:"upload_date"`
	Description *string  `json:"description"`
	Thumbnail   *string  `json:"thumbnail"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`

	Formats []RawFormat `json:"formats"`

	// Entries is populated for search runs, one element per found video.
	Entries []RawVideoInfo `json:"entries"`
}

// RawFormat is one format variant as reported by the upstream extractor.
type RawFormat struct {
	FormatID   string   `json:"format_id"`
	Ext        string   `json:"ext"`
	URL        string   `json:"url"`
	Quality    *string  `json:"quality_label"`
	Filesize   *int64   `json:"filesize"`
	ACodec     *string  `json:"acodec"`
	VCodec     *string  `json:"vcodec"`
	ABR        *float64 `json:"abr"`
	VBR        *float64 `json:"vbr"`
	TBR        *float64 `json:"tbr"`
	FormatNote *string  `json:"format_note"`
}
