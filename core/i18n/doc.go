// Package i18n negotiates the response language from Accept-Language and holds the
// English and French message catalog and date formats.
//
// English dates render as "01/15/2025 at 2:30 PM", French as "15/01/2025 à 14:30".
// Unsupported languages fall back to English and unknown message keys are returned
// unchanged.
package i18n
