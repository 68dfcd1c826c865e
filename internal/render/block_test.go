// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want BlockKind
	}{
		{"### 1. Attention Is All You Need", Heading},
		{"**Authors**: A, B", BoldLine},
		{"**Review**: *Solid work.*", BoldLine},
		{"* First item", NumberedItem},
		{"  + nested plus", BulletItem},
		{"  - nested minus", BulletItem},
		{"Plain paragraph text.", Paragraph},
		{"", Paragraph},
		{"## Level two heading", Paragraph},
		{"###no space", Paragraph},
		{"*emphasis only*", Paragraph},
		{"- top-level dash", Paragraph},
		{"   + three spaces", Paragraph},
		{"* ", NumberedItem},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := Classify(tt.line)
			if got.Kind != tt.want {
				t.Errorf("Classify(%q).Kind = %v, want %v", tt.line, got.Kind, tt.want)
			}
			if got.Text != tt.line {
				t.Errorf("Classify(%q).Text = %q, want raw line", tt.line, got.Text)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	blocks := Blocks("### H\r\n**Bold**\n* item\n  - sub\ntext")

	want := []BlockKind{Heading, BoldLine, NumberedItem, BulletItem, Paragraph}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
	}
	for i, k := range want {
		if blocks[i].Kind != k {
			t.Errorf("block %d kind = %v, want %v", i, blocks[i].Kind, k)
		}
	}
	if blocks[0].Text != "### H" {
		t.Errorf("carriage return not trimmed: %q", blocks[0].Text)
	}
}

func TestBlockKindString(t *testing.T) {
	if got := NumberedItem.String(); got != "numbered-item" {
		t.Errorf("NumberedItem.String() = %q", got)
	}
	if got := BlockKind(42).String(); got != "unknown" {
		t.Errorf("BlockKind(42).String() = %q", got)
	}
}
