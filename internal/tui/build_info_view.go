// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-formstate/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	body := overlayBoxStyle.Render("Application: formdemo\n" + info.String())
	return renderPage("ABOUT", body, "esc: back")
}
