package parse

import "testing"

func Test_Parse_Dockerfile_MultiStage(t *testing.T) {
	content := "FROM alpine:3.18 AS build\nWORKDIR /app\nENV KEY=value\nENV KEY=other\n"
	doc := Parse("Dockerfile", content)

	meta := doc.Metadata
	if meta.Image != "alpine:3.18" {
		t.Errorf("expected image alpine:3.18, got %q", meta.Image)
	}
	if meta.Workdir != "/app" {
		t.Errorf("expected workdir /app, got %q", meta.Workdir)
	}
	if meta.Env["KEY"] != "other" {
		t.Errorf("expected last ENV to win, got %q", meta.Env["KEY"])
	}
}

func Test_Parse_Dockerfile_FirstFromWins(t *testing.T) {
	content := "FROM golang:1.25 AS builder\nFROM scratch\nCMD [\"/app\"]\n"
	doc := Parse("Dockerfile", content)

	if doc.Metadata.Image != "golang:1.25" {
		t.Errorf("expected first FROM to win, got %q", doc.Metadata.Image)
	}
}

func Test_Parse_Dockerfile_LastDirectiveWins(t *testing.T) {
	content := "WORKDIR /build\nENTRYPOINT [\"sh\"]\nCMD [\"build\"]\nWORKDIR /srv\nENTRYPOINT [\"/srv/app\"]\nCMD [\"serve\"]\n"
	doc := Parse("Dockerfile", content)

	meta := doc.Metadata
	if meta.Workdir != "/srv" {
		t.Errorf("expected last WORKDIR, got %q", meta.Workdir)
	}
	if meta.Entrypoint != `["/srv/app"]` {
		t.Errorf("expected last ENTRYPOINT, got %q", meta.Entrypoint)
	}
	if meta.Cmd != `["serve"]` {
		t.Errorf("expected last CMD, got %q", meta.Cmd)
	}
}

func Test_Parse_Dockerfile_CaseInsensitiveDirectives(t *testing.T) {
	content := "from ubuntu:22.04\nworkdir /data\nenv MODE production\n"
	doc := Parse("Dockerfile", content)

	meta := doc.Metadata
	if meta.Image != "ubuntu:22.04" {
		t.Errorf("expected lowercase from to match, got %q", meta.Image)
	}
	if meta.Workdir != "/data" {
		t.Errorf("expected lowercase workdir to match, got %q", meta.Workdir)
	}
	if meta.Env["MODE"] != "production" {
		t.Errorf("expected whitespace ENV form to parse, got %v", meta.Env)
	}
}

func Test_Parse_Dockerfile_EnvForms(t *testing.T) {
	content := "ENV A=1\nENV B two words\nENV C = spaced\n"
	doc := Parse("Dockerfile", content)

	env := doc.Metadata.Env
	if env["A"] != "1" {
		t.Errorf("expected A=1, got %q", env["A"])
	}
	if env["B"] != "two words" {
		t.Errorf("expected value to keep remainder of line, got %q", env["B"])
	}
}

func Test_Parse_Dockerfile_NoFrom(t *testing.T) {
	doc := Parse("Dockerfile", "WORKDIR /app\n")

	if doc.Metadata.Image != "" {
		t.Errorf("expected unset image when no FROM directive, got %q", doc.Metadata.Image)
	}
	if doc.Metadata.Workdir != "/app" {
		t.Errorf("expected workdir to still be extracted, got %q", doc.Metadata.Workdir)
	}
}
