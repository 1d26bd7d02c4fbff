// Package domain models the curated list of virtual events published by the site.
//
// # Source Documents
//
// Each topical feed is one YAML (or JSON) file holding a sequence of records:
//
//	- title: Rust in Paris
//	  url: https://example.org/rust-paris
//	  name: Rust Paris Meetup
//	  address: https://meet.example.org/rust
//	  language: French
//	  start: 2024-06-06T18:00:00+02:00
//	  category: Rust
//
// The field set is closed. An unknown key, an empty or missing key, or an
// enumeration value outside its set rejects the whole document. Matching of
// language and category is case-sensitive ("rust" is not "Rust"). Documents
// are decoded independently and concatenated in the configured order, which
// becomes the order events appear in every listing.
//
// Start format:
//
//	RFC 3339 with an explicit offset: "2024-06-06T18:00:00+02:00" or "...Z".
//	Naive local times are rejected with [ErrTimestamp].
//
// # Time Handling
//
// A run captures "now" once. [Upcoming] keeps events with start >= now, so an
// event starting at exactly now is still listed. [Localize] then attaches the
// start in four display zones using the embedded IANA database:
//
//	UTC | America/New_York | America/Los_Angeles | Pacific/Auckland
//
// formatted with [DisplayLayout] ("Jun 06 18:00", 24-hour clock).
//
// # Partitions
//
// [Partitions] yields "all", then each category followed by each
// category-language pair, as a full cross product of [Categories] and
// [Languages]. Empty combinations are kept so every label gets its files.
//
//	all, perl, perl-english, perl-french, perl-hebrew, python, ..., rust-hebrew
//
// # Ranking
//
// [Tally.Ranked] sorts stably by ascending count and then reverses the list.
// Equal counts therefore appear in reverse insertion order.
package domain
