// Package snarf extracts bibliographic metadata from static HTML pages
// saved from the legacy CompanionSite and serializes it as a JSON fixture
// for import into the new site.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/).
package snarf
