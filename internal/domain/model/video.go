package model

import "time"

const watchURLPrefix = "https://www.youtube.com/watch?v="

// WatchURL returns the canonical watch page URL for a video ID.
func WatchURL(videoID string) string {
	return watchURLPrefix + videoID
}

// VideoFormat describes one downloadable format variant of a video. Pointer
// fields are nil when the upstream did not report the value; callers can
// tell "unknown" apart from zero.
type VideoFormat struct {
	FormatID   string   `json:"format_id"`
	Ext        string   `json:"ext"`
	Quality    *string  `json:"quality"`
	Filesize   *int64   `json:"filesize"`
	ACodec     *string  `json:"acodec"`
	VCodec     *string  `json:"vcodec"`
	ABR        *float64 `json:"abr"`
	VBR        *float64 `json:"vbr"`
	FormatNote *string  `json:"format_note"`
}

// VideoSearchResult is one entry of a search response.
type VideoSearchResult struct {
	VideoID     string   `json:"video_id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Duration    *int64   `json:"duration"`
	ViewCount   *int64   `json:"view_count"`
	LikeCount   *int64   `json:"like_count"`
	Channel     *string  `json:"channel"`
	ChannelID   *string  `json:"channel_id"`
	UploadDate  *string  `json:"upload_date"`
	Description *string  `json:"description"`
	Thumbnail   *string  `json:"thumbnail"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
}

// VideoDetail is the full record for a single video, including its format
// catalogue and the derived audio selections.
type VideoDetail struct {
	VideoID     string   `json:"video_id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Duration    *int64   `json:"duration"`
	ViewCount   *int64   `json:"view_count"`
	LikeCount   *int64   `json:"like_count"`
	Channel     *string  `json:"channel"`
	ChannelID   *string  `json:"channel_id"`
	ChannelURL  *string  `json:"channel_url"`
	UploadDate  *string  `json:"upload_date"`
	Description *string  `json:"description"`
	Thumbnail   *string  `json:"thumbnail"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`

	Formats          []VideoFormat `json:"formats"`
	AudioOnlyFormats []VideoFormat `json:"audio_only_formats"`
	BestAudioFormat  *VideoFormat  `json:"best_audio_format"`
}

// AudioStream is a directly playable audio URL for a video. ExpiresAt is the
// assumed validity window of the upstream-issued URL itself, independent of
// any cache TTL.
type AudioStream struct {
	VideoID   string    `json:"video_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	FormatID  string    `json:"format_id"`
	Ext       string    `json:"ext"`
	ACodec    *string   `json:"acodec"`
	Bitrate   *float64  `json:"bitrate"`
	ExpiresAt time.Time `json:"expires_at"`
}
