package probe

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Index         int
	Codec         string
	Width         int
	Height        int
	IsAttachedPic bool
}

// ProbeResult is the parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first non-attached-pic video stream, falling back to
// the first video stream of any kind (nil if there is none).
type ProbeResult struct {
	FormatName   string // ffprobe's container name, e.g. "matroska,webm"
	VideoStreams []VideoStream
	PrimaryVideo *VideoStream
}
