package storage

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

func infoSection(info note.MediaInfo) string {
	var b strings.Builder
	b.WriteString("## 视频信息\n")
	fmt.Fprintf(&b, "- 作者：%s\n", info.Uploader)
	fmt.Fprintf(&b, "- 时长：%d秒\n", int(info.Duration.Seconds()))
	fmt.Fprintf(&b, "- 平台：%s\n", info.Platform)
	fmt.Fprintf(&b, "- 链接：%s\n\n", info.URL)
	return b.String()
}

func shortNoteMarkdown(info note.MediaInfo, sn note.ShortNote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", sn.Title)
	b.WriteString(infoSection(info))

	b.WriteString("## 笔记内容\n\n")
	b.WriteString(strings.TrimSpace(sn.Body))
	b.WriteString("\n")

	if len(sn.Tags) > 0 {
		b.WriteString("\n## 标签\n\n")
		for i, tag := range sn.Tags {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString("#" + tag)
		}
		b.WriteString("\n")
	}

	if len(sn.Images) > 0 {
		b.WriteString("\n## 相关图片\n\n")
		for i, img := range sn.Images {
			fmt.Fprintf(&b, "![配图%d](%s)\n", i+1, img.URL)
		}
	}

	return b.String()
}
