package model

import (
	"errors"
	"time"
)

// ErrNoPlayableAudio is returned when a video has no format with a usable
// audio track and a resolved playback URL. It distinguishes "upstream gave
// us nothing playable" from an upstream call failure.
var ErrNoPlayableAudio = errors.New("no playable audio format")

// SearchResultsFromRaw shapes the entries of a search run. Entries without a
// usable video ID are dropped, so one malformed entry never sinks the batch.
func SearchResultsFromRaw(info *RawVideoInfo) []VideoSearchResult {
	results := make([]VideoSearchResult, 0, len(info.Entries))
	for i := range info.Entries {
		entry := &info.Entries[i]
		if entry.ID == "" {
			continue
		}
		results = append(results, VideoSearchResult{
			VideoID:     entry.ID,
			Title:       entry.Title,
			URL:         entry.pageURL(),
			Duration:    entry.durationSeconds(),
			ViewCount:   entry.ViewCount,
			LikeCount:   entry.LikeCount,
			Channel:     entry.channelName(),
			ChannelID:   entry.ChannelID,
			UploadDate:  entry.UploadDate,
			Description: entry.Description,
			Thumbnail:   entry.Thumbnail,
			Categories:  entry.Categories,
			Tags:        entry.Tags,
		})
	}
	return results
}

// DetailFromRaw shapes a single raw record into the full detail response,
// including the format catalogue, the audio-only subset, and the best-audio
// selection.
func DetailFromRaw(info *RawVideoInfo) *VideoDetail {
	formats := make([]VideoFormat, 0, len(info.Formats))
	audioOnly := make([]VideoFormat, 0)
	for i := range info.Formats {
		raw := &info.Formats[i]
		shaped := raw.shaped()
		formats = append(formats, shaped)
		if raw.isAudioOnly() {
			audioOnly = append(audioOnly, shaped)
		}
	}

	return &VideoDetail{
		VideoID:     info.ID,
		Title:       info.Title,
		URL:         info.pageURL(),
		Duration:    info.durationSeconds(),
		ViewCount:   info.ViewCount,
		LikeCount:   info.LikeCount,
		Channel:     info.channelName(),
		ChannelID:   info.ChannelID,
		ChannelURL:  info.ChannelURL,
		UploadDate:  info.UploadDate,
		Description: info.Description,
		Thumbnail:   info.Thumbnail,
		Categories:  info.Categories,
		Tags:        info.Tags,

		Formats:          formats,
		AudioOnlyFormats: audioOnly,
		BestAudioFormat:  bestAudio(audioOnly),
	}
}

// AudioStreamFromRaw picks a playable audio format and shapes it into an
// AudioStream. Audio-only formats with a resolved URL are preferred; failing
// that, any format with a non-"none" audio codec and a URL is accepted.
// Returns ErrNoPlayableAudio when neither exists.
func AudioStreamFromRaw(info *RawVideoInfo, validFor time.Duration, now time.Time) (*AudioStream, error) {
	chosen := pickAudioFormat(info.Formats)
	if chosen == nil {
		return nil, ErrNoPlayableAudio
	}

	bitrate := chosen.ABR
	if bitrate == nil {
		bitrate = chosen.TBR
	}

	return &AudioStream{
		VideoID:   info.ID,
		Title:     info.Title,
		URL:       chosen.URL,
		FormatID:  chosen.FormatID,
		Ext:       chosen.Ext,
		ACodec:    chosen.ACodec,
		Bitrate:   bitrate,
		ExpiresAt: now.Add(validFor),
	}, nil
}

func pickAudioFormat(formats []RawFormat) *RawFormat {
	for i := range formats {
		if formats[i].isAudioOnly() && formats[i].URL != "" {
			return &formats[i]
		}
	}
	for i := range formats {
		if !codecIs(formats[i].ACodec, "none") && formats[i].URL != "" {
			return &formats[i]
		}
	}
	return nil
}

// bestAudio returns the audio-only format with the highest audio bitrate.
// A missing bitrate compares as zero; ties keep the first maximum seen.
// Returns nil for an empty subset.
func bestAudio(audioOnly []VideoFormat) *VideoFormat {
	var best *VideoFormat
	bestABR := -1.0
	for i := range audioOnly {
		abr := 0.0
		if audioOnly[i].ABR != nil {
			abr = *audioOnly[i].ABR
		}
		if abr > bestABR {
			best = &audioOnly[i]
			bestABR = abr
		}
	}
	return best
}

// isAudioOnly reports whether the format carries audio but no video track:
// the video codec reads as "none" while the audio codec does not.
func (f *RawFormat) isAudioOnly() bool {
	return codecIs(f.VCodec, "none") && !codecIs(f.ACodec, "none")
}

func codecIs(codec *string, value string) bool {
	return codec != nil && *codec == value
}

func (f *RawFormat) shaped() VideoFormat {
	return VideoFormat{
		FormatID:   f.FormatID,
		Ext:        f.Ext,
		Quality:    f.Quality,
		Filesize:   f.Filesize,
		ACodec:     f.ACodec,
		VCodec:     f.VCodec,
		ABR:        f.ABR,
		VBR:        f.VBR,
		FormatNote: f.FormatNote,
	}
}

// pageURL returns the upstream-reported watch URL, reconstructing the
// canonical one from the video ID when the upstream omits it.
func (info *RawVideoInfo) pageURL() string {
	if info.WebpageURL != "" {
		return info.WebpageURL
	}
	return WatchURL(info.ID)
}

// channelName prefers the uploader name and falls back to the channel name.
func (info *RawVideoInfo) channelName() *string {
	if info.Uploader != "" {
		name := info.Uploader
		return &name
	}
	if info.Channel != "" {
		name := info.Channel
		return &name
	}
	return nil
}

func (info *RawVideoInfo) durationSeconds() *int64 {
	if info.Duration == nil {
		return nil
	}
	seconds := int64(*info.Duration)
	return &seconds
}
