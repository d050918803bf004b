// Package sections composes primitives and components into the page bands
// of the site: header, footer and the landing-page sections. Sections take
// their copy from content snapshots and hold no state of their own.
package sections
