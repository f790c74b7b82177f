// Package sitegrab scrapes a single web page through a hosted scraping API
// and turns the response into a categorized result: text sections, images
// and PDF links, all with absolute URLs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, readability/).
package sitegrab
