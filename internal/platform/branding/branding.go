// Package branding holds the product name and brand mark copy.
package branding

// AppName is the product name shown in the brand mark and page titles.
const AppName = "NP Boilerplate"

// BrandAnchor is the in-page target the brand mark links to.
const BrandAnchor = "#home"
