package core

// FileInfo holds the figures shown in the report.
type FileInfo struct {
	Name           string
	Size           int
	CompressedSize int
	Ratio          float64
	Lines          int
}

// NewFileInfo derives the report figures from already computed values.
func NewFileInfo(name, content string, compressedSize int) FileInfo {
	size := len(content)
	return FileInfo{
		Name:           name,
		Size:           size,
		CompressedSize: compressedSize,
		Ratio:          CompressionRatio(size, compressedSize),
		Lines:          CountLines(content),
	}
}

// CompressionRatio returns the space saved as a percentage. An empty input
// yields 0.
func CompressionRatio(originalSize, compressedSize int) float64 {
	if originalSize <= 0 {
		return 0
	}
	return (1 - float64(compressedSize)/float64(originalSize)) * 100
}

// CountLines counts lines treating "\n", "\r\n" and "\r" each as one break.
// A trailing line without a terminator still counts.
func CountLines(content string) int {
	lines := 0
	pending := false

	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			lines++
			pending = false
		case '\n':
			lines++
			pending = false
		default:
			pending = true
		}
	}

	if pending {
		lines++
	}
	return lines
}
