package ui

import "github.com/mattn/go-runewidth"

// Fixed Persian labels
const (
	errorPrefix       = "خطا: "
	loadingLabel      = "در حال بارگذاری"
	programsLabel     = "برنامه"
	showMoreLabel     = "نمایش بیشتر"
	noResultsLabel    = "برنامه‌ای یافت نشد"
	noLinkLabel       = "پیوند منبع موجود نیست"
	searchPrompt      = "🔍 "
	searchPlaceholder = "جستجو..."
)

// Layout of the content pane
const (
	headerLines  = 2 // search bar and info line
	frameSize    = 2 // border on each side
	framePadding = 1
	timeLabel    = "00:00"
)

var (
	timeLabelWidth = runewidth.StringWidth(timeLabel)
	ellipsisWidth  = runewidth.StringWidth("...")

	progressEmptyChar  = "─"
	progressFilledChar = "━"
)
