package lgtv

import (
	"compress/gzip"
	"encoding/xml"
	"os"
	"time"
)

const (
	xmltvGenInfoName = "lg-playlist-generator"
	xmltvGenInfoURL  = "https://github.com/BuddyChewChew/lg-playlist-generator"

	xmltvDoctype = "<!DOCTYPE tv SYSTEM \"xmltv.dtd\">\n"

	// xmltvTimeLayout is XMLTV's canonical timestamp form,
	// e.g. "20240115103000 +0000".
	xmltvTimeLayout = "20060102150405 -0700"
)

// TV is the root element of an XMLTV document.
type TV struct {
	XMLName           xml.Name       `xml:"tv"`
	GeneratorInfoName string         `xml:"generator-info-name,attr,omitempty"`
	GeneratorInfoURL  string         `xml:"generator-info-url,attr,omitempty"`
	Channels          []XMLChannel   `xml:"channel"`
	Programmes        []XMLProgramme `xml:"programme"`
}

type XMLChannel struct {
	ID          string   `xml:"id,attr"`
	DisplayName string   `xml:"display-name"`
	Icon        *XMLIcon `xml:"icon,omitempty"`
}

type XMLIcon struct {
	Src string `xml:"src,attr"`
}

type XMLProgramme struct {
	Start      string   `xml:"start,attr"`
	Stop       string   `xml:"stop,attr"`
	Channel    string   `xml:"channel,attr"`
	Title      string   `xml:"title"`
	Desc       string   `xml:"desc,omitempty"`
	Categories []string `xml:"category,omitempty"`
}

// ToXMLTV builds the guide document: one channel element per input channel
// in input order (with or without schedule data), then one programme element
// per program in channel order.
func ToXMLTV(channels []Channel, programsByID map[string][]Program) *TV {
	xmlChannels := make([]XMLChannel, 0, len(channels))
	programmes := make([]XMLProgramme, 0)

	for _, channel := range channels {
		xmlChannel := XMLChannel{
			ID:          channel.ID,
			DisplayName: channel.Name,
		}
		if channel.Logo != "" {
			xmlChannel.Icon = &XMLIcon{Src: channel.Logo}
		}
		xmlChannels = append(xmlChannels, xmlChannel)
	}

	for _, channel := range channels {
		for _, program := range programsByID[channel.ID] {
			programmes = append(programmes, XMLProgramme{
				Start:      ToXMLTVTime(program.Start),
				Stop:       ToXMLTVTime(program.Stop),
				Channel:    channel.ID,
				Title:      program.Title,
				Desc:       program.Description,
				Categories: program.Categories,
			})
		}
	}

	return &TV{
		GeneratorInfoName: xmltvGenInfoName,
		GeneratorInfoURL:  xmltvGenInfoURL,
		Channels:          xmlChannels,
		Programmes:        programmes,
	}
}

// ToXMLTVTime converts an ISO-8601 timestamp ("Z" or numeric offset) to the
// XMLTV timestamp form. Empty or unparseable input yields an empty string;
// the attribute is still emitted with the empty value.
func ToXMLTVTime(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return t.Format(xmltvTimeLayout)
}

// MarshalXMLTV serializes the document with the XML declaration and the
// xmltv DOCTYPE reference.
func MarshalXMLTV(tv *TV) ([]byte, error) {
	body, err := xml.MarshalIndent(tv, "", "  ")
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(xml.Header)+len(xmltvDoctype)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, xmltvDoctype...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// WriteXMLTVGzip writes the gzip-compressed guide document to filePath.
func WriteXMLTVGzip(tv *TV, filePath string) error {
	data, err := MarshalXMLTV(tv)
	if err != nil {
		return err
	}

	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gzipWriter := gzip.NewWriter(f)
	if _, err = gzipWriter.Write(data); err != nil {
		return err
	}
	return gzipWriter.Close()
}
