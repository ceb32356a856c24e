package lgtv

import (
	"fmt"
	"strings"
)

// ToM3UFormat renders the channel list as an extended M3U playlist. The
// header references the EPG artifact so players can auto-load the guide.
// Channels without a stream URL are omitted, they are lineup metadata only.
// Attribute values are interpolated without quote escaping; players tolerate
// stray quotes better than a changed directive layout.
func ToM3UFormat(channels []Channel, epgFilename string) string {
	var sb strings.Builder
	sb.WriteString("#EXTM3U x-tvg-url=" + epgFilename + "\n")
	for _, channel := range channels {
		if channel.StreamURL == "" {
			continue
		}

		sb.WriteString(fmt.Sprintf("#EXTINF:-1 tvg-id=\"%s\" tvg-name=\"%s\" tvg-logo=\"%s\" group-title=\"%s\",%s\n",
			channel.ID, channel.Name, channel.Logo, strings.Join(channel.Categories, ","), channel.Name))
		sb.WriteString(channel.StreamURL + "\n")
	}
	return sb.String()
}

// ToTxtFormat renders the channel list as plain "name,url" lines for players
// that do not speak M3U.
func ToTxtFormat(channels []Channel) string {
	var sb strings.Builder
	for _, channel := range channels {
		if channel.StreamURL == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s,%s\n", channel.Name, channel.StreamURL))
	}
	return sb.String()
}
