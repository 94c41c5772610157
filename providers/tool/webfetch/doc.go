// Package webfetch provides a catalog tool that downloads web pages and
// converts them to Markdown for language model consumption.
package webfetch
