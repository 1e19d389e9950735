// brand.go - Site branding, fixed at startup
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	BrandRed   = "#ff4e46"
	BrandBlack = "#323232"

	VideoURL   = "https://res.cloudinary.com/dw2vuswnh/video/upload/v1/lv_0_20260120185122_dwxgvj.mp4"
	PatternURL = "https://i.ibb.co.com/LDDWcBFs/Picsart-26-01-17-18-12-50-427.png"

	SiteTitle = "Alpha Broz"
)

// SocialLink is one icon on the back of the links card
type SocialLink struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// External links open in a new tab; mailto stays in the current context
func (s SocialLink) External() bool {
	return isExternalHref(s.Href)
}

// Brand holds every branding constant the views render
type Brand struct {
	Title      string       `yaml:"title"`
	Red        string       `yaml:"red"`
	Black      string       `yaml:"black"`
	VideoURL   string       `yaml:"video_url"`
	PatternURL string       `yaml:"pattern_url"`
	Socials    []SocialLink `yaml:"socials"`
}

func defaultBrand() Brand {
	return Brand{
		Title:      SiteTitle,
		Red:        BrandRed,
		Black:      BrandBlack,
		VideoURL:   VideoURL,
		PatternURL: PatternURL,
		Socials: []SocialLink{
			{ID: "x", Label: "X", Href: "https://x.com/alphabrozdao"},
			{ID: "discord", Label: "Discord", Href: "https://discord.gg/gYEerfkxTK"},
			{ID: "mail", Label: "Email", Href: "mailto:alphabrozdao@gmail.com"},
		},
	}
}

// LoadBrand returns the default branding, overridden by any field set in the
// YAML file at path. An empty path means defaults only.
func LoadBrand(path string) (Brand, error) {
	brand := defaultBrand()
	if path == "" {
		return brand, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return brand, fmt.Errorf("read brand file: %w", err)
	}

	var override Brand
	if err := yaml.Unmarshal(data, &override); err != nil {
		return brand, fmt.Errorf("parse brand file %s: %w", path, err)
	}

	if override.Title != "" {
		brand.Title = override.Title
	}
	if override.Red != "" {
		brand.Red = override.Red
	}
	if override.Black != "" {
		brand.Black = override.Black
	}
	if override.VideoURL != "" {
		brand.VideoURL = override.VideoURL
	}
	if override.PatternURL != "" {
		brand.PatternURL = override.PatternURL
	}
	if len(override.Socials) > 0 {
		brand.Socials = override.Socials
	}
	return brand, nil
}
