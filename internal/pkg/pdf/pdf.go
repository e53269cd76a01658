package pdf

import (
	"context"
)

// Converter PDF转换器接口
type Converter interface {
	// ConvertHTMLToPDF 将HTML内容转换为PDF
	ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error)
}

type Options struct {
	PaperWidthInch   float64
	PaperHeightInch  float64
	MarginTopInch    float64
	MarginBottomInch float64
	MarginLeftInch   float64
	MarginRightInch  float64
	Landscape        bool
	Title            string
}

type Option func(*Options)
