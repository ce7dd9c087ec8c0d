package config

import "github.com/flexprice/prorata/internal/types"

// DefaultCatalog returns the products and add-ons sold today.
func DefaultCatalog() CatalogConfig {
	return CatalogConfig{
		Products: []ProductConfig{
			{
				ID:               "iew",
				Name:             types.LocalizedString{EN: "Internet Everywhere", AR: "إنترنت في كل مكان"},
				Description:      types.LocalizedString{EN: "Mobile broadband with a mid-month billing anchor.", AR: "خدمة إنترنت متنقلة بدورة فوترة في منتصف الشهر."},
				AnchorDay:        15,
				DefaultBasePrice: 29,
			},
			{
				ID:               "mobile-postpaid",
				Name:             types.LocalizedString{EN: "Mobile Postpaid", AR: "موبايل فوترة"},
				Description:      types.LocalizedString{EN: "Standard postpaid mobile plan aligned to day 15.", AR: "باقة موبايل مفوترة بمرتكز فوترة على اليوم 15."},
				AnchorDay:        15,
				DefaultBasePrice: 18,
			},
			{
				ID:               "ftth",
				Name:             types.LocalizedString{EN: "FTTH", AR: "ألياف ضوئية"},
				Description:      types.LocalizedString{EN: "Fiber to the home with a first-of-month anchor.", AR: "خدمة ألياف منزلية بمرتكز فوترة في اليوم الأول من الشهر."},
				AnchorDay:        1,
				DefaultBasePrice: 35,
			},
			{
				ID:               "adsl",
				Name:             types.LocalizedString{EN: "ADSL", AR: "خدمة ADSL"},
				Description:      types.LocalizedString{EN: "Legacy broadband aligned with first-of-month billing.", AR: "إنترنت تقليدي مع فوترة تبدأ في بداية الشهر."},
				AnchorDay:        1,
				DefaultBasePrice: 22,
			},
		},
		AddOns: []AddOnConfig{
			{
				ID:          "anghami",
				Name:        types.LocalizedString{EN: "Anghami", AR: "أنغامي"},
				Description: types.LocalizedString{EN: "Music streaming add-on applied monthly.", AR: "إضافة بث موسيقي تُطبق شهرياً."},
				Price:       2,
			},
			{
				ID:          "tod-mobile",
				Name:        types.LocalizedString{EN: "TOD Mobile", AR: "TOD موبايل"},
				Description: types.LocalizedString{EN: "Mobile-only TOD subscription (up to 6 JD).", AR: "اشتراك TOD على الأجهزة المحمولة (حتى 6 دنانير)."},
				Price:       6,
			},
			{
				ID:          "tod-view",
				Name:        types.LocalizedString{EN: "TOD View", AR: "TOD View"},
				Description: types.LocalizedString{EN: "Streaming-only TOD View package.", AR: "باقة TOD View للبث فقط."},
				Price:       10,
			},
			{
				ID:          "tod-1k",
				Name:        types.LocalizedString{EN: "TOD 1K", AR: "TOD 1K"},
				Description: types.LocalizedString{EN: "TOD 1K entertainment bundle.", AR: "باقة TOD 1K الترفيهية."},
				Price:       12,
			},
			{
				ID:          "tod-4k",
				Name:        types.LocalizedString{EN: "TOD 4K", AR: "TOD 4K"},
				Description: types.LocalizedString{EN: "TOD 4K premium experience add-on.", AR: "إضافة TOD 4K المميزة."},
				Price:       16,
			},
		},
	}
}
