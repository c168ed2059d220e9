// Package outlets holds the configuration records for every supported news
// site. Each outlet is data over the shared extractor primitive: base URL,
// list selector, per-field fallback chains, and the date sources the site
// actually publishes.
package outlets

import (
	"NewsAggregator/internal/dates"
	"NewsAggregator/internal/extractor"
)

// All returns every configured outlet.
func All() []extractor.Outlet {
	return registry
}

// BySlug returns one outlet by its route key.
func BySlug(slug string) (extractor.Outlet, bool) {
	for _, o := range registry {
		if o.Slug == slug {
			return o, true
		}
	}
	return extractor.Outlet{}, false
}

var registry = []extractor.Outlet{
	{
		Slug:         "tasnim",
		AgencyNameEn: "Tasnim News Agency",
		BaseURL:      "https://www.tasnimnews.com",
		ListSelector: "article.list-item, article.box-item",
		Title: []extractor.Rule{
			{Selector: "h1.title"},
			{MetaProperty: "og:title"},
		},
		Summary: []extractor.Rule{
			{Selector: "h2.lead"},
			{MetaName: "description"},
		},
		Image: []extractor.Rule{
			{Selector: "figure img", Attr: "src"},
			{MetaProperty: "og:image"},
		},
		Tags: extractor.TagRules{
			Selector:  ".news-container.keywords-box .content ul.smart-keyword li.skeyword-item a",
			MetaName:  "keywords",
			Separator: "|",
		},
		Dates: []extractor.DateRule{
			{Kind: extractor.DateJSONLD, Format: dates.ISO8601},
			{Kind: extractor.DateMetaProperty, Key: "rnews:datePublished", Format: dates.JalaliAMPM},
			{Kind: extractor.DateMetaItemprop, Key: "datePublished", Format: dates.ISO8601},
			{Kind: extractor.DateSelectorText, Key: "li.time", Format: dates.JalaliMonthName},
		},
		Categories: []extractor.Category{
			{Slug: "politics", Path: "/fa/service/1/%D8%B3%DB%8C%D8%A7%D8%B3%DB%8C"},
			{Slug: "economy", Path: "/fa/service/7/%D8%A7%D9%82%D8%AA%D8%B5%D8%A7%D8%AF%DB%8C"},
			{Slug: "sports", Path: "/fa/service/3/%D9%88%D8%B1%D8%B2%D8%B4%DB%8C"},
			{Slug: "social", Path: "/fa/service/2/%D8%A7%D8%AC%D8%AA%D9%85%D8%A7%D8%B9%DB%8C"},
			{Slug: "international", Path: "/fa/service/8/%D8%A8%DB%8C%D9%86-%D8%A7%D9%84%D9%85%D9%84%D9%84"},
			{Slug: "culture-art", Path: "/fa/service/4/%D9%81%D8%B1%D9%87%D9%86%DA%AF%DB%8C"},
			{Slug: "science-tech", Path: "/fa/service/1486/%D9%81%D8%B6%D8%A7-%D9%88-%D9%86%D8%AC%D9%88%D9%85"},
		},
	},
	{
		Slug:             "khabaronline",
		AgencyNameEn:     "Khabar Online News Agency",
		BaseURL:          "https://www.khabaronline.ir",
		ListSelector:     "li.News",
		ListLinkSelector: ".desc h3 a",
		Title: []extractor.Rule{
			{MetaProperty: "og:title"},
			{Selector: "h1.title"},
		},
		Summary: []extractor.Rule{
			{Selector: ".item-summary .summary"},
			{MetaName: "description"},
		},
		Content: []extractor.Rule{
			{Selector: ".item-body .item-text"},
		},
		Image: []extractor.Rule{
			{Selector: ".item-summary img", Attr: "src"},
			{MetaProperty: "og:image"},
		},
		Tags: extractor.TagRules{
			Selector: ".box.tags ul li a",
			MetaName: "keywords",
		},
		Dates: []extractor.DateRule{
			{Kind: extractor.DateMetaProperty, Key: "article:published_time", Format: dates.ISO8601},
			{Kind: extractor.DateMetaItemprop, Key: "datePublished", Format: dates.ISO8601},
			{Kind: extractor.DateJSONLD, Format: dates.ISO8601},
			{Kind: extractor.DateMetaName, Key: "date", Format: dates.ISO8601},
			{Kind: extractor.DateSelectorText, Key: ".item-date span", Format: dates.JalaliMonthName},
			{Kind: extractor.DateSelectorText, Key: ".print-header .date", Format: dates.JalaliMonthName},
		},
		Categories: []extractor.Category{
			{Slug: "politics", Path: "/service/Politics"},
			{Slug: "economy", Path: "/service/Economy"},
			{Slug: "sports", Path: "/service/sport"},
			{Slug: "social", Path: "/service/society"},
			{Slug: "international", Path: "/service/World"},
			{Slug: "culture-art", Path: "/service/culture"},
			{Slug: "science-tech", Path: "/service/science"},
		},
	},
	{
		Slug:             "ettelaat",
		AgencyNameEn:     "Ettelaat News Agency",
		BaseURL:          "https://www.ettelaat.com",
		ListSelector:     "section.box ul li",
		ListLinkSelector: "h3 a",
		Title: []extractor.Rule{
			{MetaProperty: "og:title"},
			{Selector: "h1"},
		},
		Summary: []extractor.Rule{
			{MetaName: "description"},
		},
		Image: []extractor.Rule{
			{MetaProperty: "og:image"},
			{Selector: "img", Attr: "src"},
		},
		Tags: extractor.TagRules{
			MetaName:     "keywords",
			MetaProperty: "article:tag",
		},
		Dates: []extractor.DateRule{
			{Kind: extractor.DateMetaProperty, Key: "article:published_time", Format: dates.ISO8601},
		},
		Categories: []extractor.Category{
			{Slug: "politics", Path: "/service/politics"},
			{Slug: "economy", Path: "/service/economy"},
			{Slug: "sports", Path: "/service/sports"},
			{Slug: "international", Path: "/service/world"},
			{Slug: "culture-art", Path: "/service/culture"},
			{Slug: "social", Path: "/service/society"},
			{Slug: "science-tech", Path: "/service/life"},
		},
	},
	{
		Slug:         "afkarnews",
		AgencyNameEn: "Afkar News Agency",
		BaseURL:      "https://www.afkarnews.com",
		ImageBaseURL: "https://cdn.afkarnews.com",
		ListSelector: "#specialnews .box-content ul.pl8.pr8 > li",
		Title: []extractor.Rule{
			{Selector: ".fb.title"},
			{MetaProperty: "og:title"},
		},
		Summary: []extractor.Rule{
			{Selector: ".lead"},
			{MetaName: "description"},
		},
		Image: []extractor.Rule{
			{Selector: ".newsimg-contain img", Attr: "src"},
			{MetaProperty: "og:image"},
		},
		Tags: extractor.TagRules{
			Selector: "#keyword .float.w80 a, #keyword a",
			MetaName: "keywords",
		},
		// Afkar never exposes a machine-readable publish date.
		Dates: nil,
		Categories: []extractor.Category{
			{Slug: "politics", Path: "/بخش-سیاسی-3"},
			{Slug: "sports", Path: "/بخش-ورزشی-7"},
			{Slug: "economy", Path: "/بخش-اقتصادی-4"},
			{Slug: "international", Path: "/بخش-بین-الملل-8"},
			{Slug: "social", Path: "/بخش-اجتماعی-5"},
			{Slug: "culture-art", Path: "/بخش-فرهنگ-هنر-6"},
		},
	},
	{
		Slug:             "parsnews",
		AgencyNameEn:     "Pars News Agency",
		BaseURL:          "https://www.parsnews.com",
		ListSelector:     ".landing-list li.myBox",
		ListLinkSelector: ".bargozide-img a, .bargozide-content h2 a",
		Title: []extractor.Rule{
			{MetaProperty: "og:title"},
			{Selector: "h1.title"},
		},
		Summary: []extractor.Rule{
			{MetaProperty: "og:description"},
			{Selector: ".bargozide-lead"},
		},
		Content: []extractor.Rule{
			{Selector: ".news-body"},
		},
		Image: []extractor.Rule{
			{MetaProperty: "og:image"},
			{Selector: "img.res-img", Attr: "src"},
		},
		Tags: extractor.TagRules{
			MetaName: "keywords",
		},
		Dates: nil,
		Categories: []extractor.Category{
			{Slug: "politics", Path: "/بخش-سیاسی-3"},
			{Slug: "international", Path: "/بخش-بین-الملل-8"},
			{Slug: "economy", Path: "/بخش-اقتصادی-4"},
			{Slug: "social", Path: "/بخش-اجتماعی-5"},
			{Slug: "sports", Path: "/بخش-ورزشی-7"},
			{Slug: "culture-art", Path: "/بخش-فرهنگی-6"},
		},
	},
	{
		Slug:             "fararu",
		AgencyNameEn:     "Fararu News Agency",
		BaseURL:          "https://fararu.com",
		ListSelector:     "div.tab_box.landing_b ul.list > li.items",
		ListLinkSelector: "a.title",
		Title: []extractor.Rule{
			{MetaProperty: "og:title"},
			{Selector: "h1.title"},
		},
		Summary: []extractor.Rule{
			{MetaProperty: "og:description"},
			{Selector: ".lead"},
		},
		Image: []extractor.Rule{
			{MetaProperty: "og:image"},
			{Selector: ".body-media img", Attr: "src"},
		},
		Tags: extractor.TagRules{
			Selector: ".tags a",
			MetaName: "keywords",
		},
		Dates: []extractor.DateRule{
			{Kind: extractor.DateSelectorAttr, Key: ".news_time time", Attr: "datetime", Format: dates.ISO8601},
		},
		Categories: []extractor.Category{
			{Slug: "politics", Path: "/بخش-سیاست-90"},
			{Slug: "sports", Path: "/بخش-ورزشی-140"},
			{Slug: "science-tech", Path: "/بخش-علم-تکنولوژی-68"},
			{Slug: "economy", Path: "/بخش-اقتصاد-22"},
			{Slug: "social", Path: "/بخش-جامعه-101"},
			{Slug: "culture-art", Path: "/بخش-فرهنگ-هنر-85"},
			{Slug: "international", Path: "/بخش-جهان-56"},
		},
	},
	{
		Slug:             "hamshahrionline",
		AgencyNameEn:     "Hamshahri Online",
		BaseURL:          "https://www.hamshahrionline.ir",
		ListSelector:     "li.news, li.report",
		ListLinkSelector: "div.desc h3 a",
		Title: []extractor.Rule{
			{MetaProperty: "og:title"},
			{Selector: "title"},
		},
		Summary: []extractor.Rule{
			{MetaName: "description"},
			{MetaProperty: "og:description"},
		},
		Image: []extractor.Rule{
			{MetaProperty: "og:image"},
			{MetaName: "thumbnail"},
		},
		Tags: extractor.TagRules{
			Selector: `section.box.tags ul li a[rel="tag"]`,
			MetaName: "keywords",
		},
		Dates: []extractor.DateRule{
			{Kind: extractor.DateMetaItemprop, Key: "datePublished", Format: dates.ISO8601},
			{Kind: extractor.DateMetaProperty, Key: "article:published_time", Format: dates.ISO8601},
		},
		Categories: []extractor.Category{
			{Slug: "politics", Path: "/service/Iran"},
			{Slug: "international", Path: "/service/world"},
			{Slug: "social", Path: "/service/Society"},
			{Slug: "economy", Path: "/service/Economy"},
			{Slug: "science-tech", Path: "/service/Science"},
			{Slug: "culture-art", Path: "/service/Culture"},
			{Slug: "sports", Path: "/service/Sport"},
		},
	},
	{
		Slug:             "namehnews",
		AgencyNameEn:     "Nameh News",
		BaseURL:          "https://www.namehnews.com",
		ListSelector:     "ul.l-second-right-list > li.container",
		ListLinkSelector: "div.image a.block",
		Title: []extractor.Rule{
			{MetaProperty: "og:title"},
			{Selector: "h3.title"},
		},
		Summary: []extractor.Rule{
			{MetaProperty: "og:description"},
			{Selector: "p.lead"},
		},
		Image: []extractor.Rule{
			{MetaProperty: "og:image"},
		},
		Tags: extractor.TagRules{
			Selector: ".article-tag a",
		},
		Dates: nil,
		Categories: []extractor.Category{
			{Slug: "politics", Path: "/بخش-خبر-سیاسی-10"},
			{Slug: "economy", Path: "/بخش-خبر-اقتصادی-4"},
			{Slug: "sports", Path: "/بخش-خبر-ورزشی-12"},
			{Slug: "science-tech", Path: "/بخش-تکنولوژی-8"},
			{Slug: "social", Path: "/بخش-خبر-حوادث-اجتماعی-17"},
		},
	},
	{
		Slug:             "mashreghnews",
		AgencyNameEn:     "Mashregh News",
		BaseURL:          "https://www.mashreghnews.ir",
		ListSelector:     "section.box.list ul li.news",
		ListLinkSelector: ".desc h3 a",
		Title: []extractor.Rule{
			{MetaProperty: "og:title"},
			{Selector: "title"},
		},
		Summary: []extractor.Rule{
			{MetaName: "description"},
		},
		Image: []extractor.Rule{
			{MetaProperty: "og:image"},
		},
		Tags: extractor.TagRules{
			MetaName:     "keywords",
			MetaProperty: "article:tag",
		},
		Dates: []extractor.DateRule{
			{Kind: extractor.DateMetaProperty, Key: "article:published_time", Format: dates.ISO8601},
			{Kind: extractor.DateMetaItemprop, Key: "datePublished", Format: dates.ISO8601},
			{Kind: extractor.DateMetaProperty, Key: "nastooh:publishDate", Format: dates.ISO8601},
			{Kind: extractor.DateMetaName, Key: "date", Format: dates.ISO8601},
		},
		Categories: []extractor.Category{
			// The politics landing renders its fresh-news block under #box41.
			{Slug: "politics", Path: "/service/political-news", ListSelector: "#box41 ul li.news"},
			{Slug: "culture-art", Path: "/service/culture-news"},
			{Slug: "international", Path: "/service/world-news"},
			{Slug: "social", Path: "/service/social-news"},
			{Slug: "economy", Path: "/service/economic-news"},
			{Slug: "sports", Path: "/service/sports-news"},
		},
	},
	{
		Slug:             "mosalasonline",
		AgencyNameEn:     "Mosalas Online",
		BaseURL:          "https://www.mosalasonline.com",
		ListSelector:     "div.landing-news-cnt ul.archive-n-land > li",
		ListLinkSelector: "div.right-service a.service-pic",
		Title: []extractor.Rule{
			{MetaProperty: "og:title"},
			{Selector: "h2.title"},
		},
		Summary: []extractor.Rule{
			{MetaProperty: "og:description"},
			{Selector: "p.lead"},
		},
		Image: []extractor.Rule{
			{MetaProperty: "og:image"},
		},
		Tags: extractor.TagRules{
			Selector: ".article-tag a, div.article_tag .tags a",
		},
		Dates: []extractor.DateRule{
			{Kind: extractor.DateSelectorAttr, Key: "time.news-time", Attr: "datetime", Format: dates.ISO8601},
			{Kind: extractor.DateSelectorText, Key: "time.news-time", Format: dates.JalaliNumeric},
		},
		Categories: []extractor.Category{
			{Slug: "politics", Path: "/بخش-جدیدترین-اخبار-سیاسی-6"},
			{Slug: "international", Path: "/بخش-جهان-5"},
			{Slug: "culture-art", Path: "/بخش-فرهنگی-4"},
			{Slug: "economy", Path: "/بخش-اقتصادی-10"},
			{Slug: "social", Path: "/بخش-اجتماعی-7"},
		},
	},
}
