// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assets

const (
	heroForeground = "/data/me1.png"
	aboutSecondary = "https://images.unsplash.com/photo-1555066931-4365d14bab8c?auto=format&fit=crop&q=80&w=800"

	fallbackForeground = "https://dannyfullstack.dev/avatars/me1.png"
)

var heroBackground = []string{
	"/data/slideshow/01.jpg",
	"/data/slideshow/02.jpg",
	"/data/slideshow/03.jpg",
	"/data/slideshow/04.png",
	"/data/slideshow/05.png",
	"/data/slideshow/06.png",
	"/data/slideshow/07.png",
}

// credentialImages are the badges of the about section.
var credentialImages = []string{
	"/data/harvard.png",
	"/data/mit.png",
	"/data/meta.png",
	"/data/google.png",
	"/data/ucdavis.png",
}

// portfolioImages are grouped per project; covers may repeat hero slides.
var portfolioImages = []string{
	// tradiantix
	"/data/slideshow/04.png",
	"/data/tradiantixwide.png",
	"/data/tradiantix-web/trade1.png",
	"/data/tradiantix-web/trade2.png",
	"/data/tradiantix-web/trade3.png",
	// negozee
	"/data/negozee.png",
	"/data/negozeewide.png",
	"/data/negozee-web-app/web1.png",
	"/data/negozee-web-app/web2.png",
	"/data/negozee-web-app/web3.png",
	"/data/negozee-mobile-app/app1.webp",
	"/data/negozee-mobile-app/app2.webp",
	"/data/negozee-mobile-app/app3.webp",
	"/data/negozee-mobile-app/app4.webp",
	"/data/negozee-mobile-app/app5.webp",
	"/data/negozee-mobile-app/app6.webp",
	// beatinbox
	"/data/beatinbox.png",
	"/data/beatinbox-web/beatinbox-wide.png",
	"/data/beatinbox-web/beatinbox-web1.png",
	"/data/beatinbox-web/beatinbox-web2.png",
	"/data/beatinbox-web/beatinbox-web3.png",
	"/data/beatinbox-mobile-app/app1.png",
	"/data/beatinbox-mobile-app/app2.png",
	"/data/beatinbox-mobile-app/app3.png",
	"/data/beatinbox-mobile-app/app4.png",
	"/data/beatinbox-mobile-app/app5.png",
	"/data/beatinbox-mobile-app/app6.png",
	// bill of rights institute
	"/data/bri.png",
	"/data/bri-web/bri-web1.png",
	"/data/bri-web/bri-web2.png",
	"/data/bri-web/bri-web3.png",
	// chain imperium
	"/data/slideshow/03.jpg",
	"/data/chain-web/chain-wide.png",
	"/data/chain-web/chain-web1.png",
	"/data/chain-web/chain-web2.png",
	"/data/chain-web/chain-web3.png",
	// facilpay
	"/data/slideshow/02.jpg",
	"/data/facil-web/facil-wide.png",
	"/data/facil-web/facil-web1.png",
	"/data/facil-web/facil-web2.png",
	"/data/facil-web/facil-web3.png",
}
