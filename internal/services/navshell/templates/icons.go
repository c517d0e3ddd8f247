package templates

// catIcon is the brand glyph.
const catIcon = `<svg class="np-brand-icon h-8 w-8" viewBox="0 0 512 512" fill="currentColor" aria-hidden="true" focusable="false">` +
	`<path d="M290.6 192c-20.2 0-106.8 2-162.6 86V192c0-52.9-43.1-96-96-96-17.7 0-32 14.3-32 32s14.3 32 32 32c17.6 0 32 14.4 32 32v256c0 35.3 28.7 64 64 64h176c8.8 0 16-7.2 16-16v-16c0-17.7-14.3-32-32-32h-32l128-96v144c0 8.8 7.2 16 16 16h32c8.8 0 16-7.2 16-16V289.9c-10.3 2.7-20.9 4.5-32 4.5-61.8 0-113.5-44.1-125.4-102.4zM448 96h-64l-64-64v134.4c0 53 43 96 96 96s96-43 96-96V32l-64 64zm-72 80c-8.8 0-16-7.2-16-16s7.2-16 16-16 16 7.2 16 16-7.2 16-16 16zm80 0c-8.8 0-16-7.2-16-16s7.2-16 16-16 16 7.2 16 16-7.2 16-16 16z"/>` +
	`</svg>`

// menuIcon is the toggle glyph. %s receives the icon classes.
const menuIcon = `<svg class="%s" viewBox="0 0 24 24" fill="currentColor" aria-hidden="true" focusable="false">` +
	`<path d="M3 4h18v2H3V4zm0 7h18v2H3v-2zm0 7h18v2H3v-2z"/>` +
	`</svg>`
