// Package participant models the actors of the marketplace. A
// participant record mirrors what the transport reports about a user and
// is replaced wholesale on every observed update.
package participant
