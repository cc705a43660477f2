// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML pages from embedded html/template files.

	r := views.MustNewRenderer()
	err := r.Render(w, views.PageDetail, views.Context{Question: &q})

Pages receive a Context with named values only (LatestQuestionList,
Question, ErrorMessage, Now). Escaping is left to html/template.
*/
package views
