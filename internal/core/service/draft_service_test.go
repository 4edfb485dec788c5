package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub model client
// ---------------------------------------------------------------------------

type stubModel struct {
	textFn  func(ctx context.Context, req ports.TextRequest) (*ports.TextResponse, error)
	imageFn func(ctx context.Context, req ports.ImageRequest) (*ports.ImageResponse, error)

	textCalls []ports.TextRequest
}

func (m *stubModel) GenerateText(ctx context.Context, req ports.TextRequest) (*ports.TextResponse, error) {
	m.textCalls = append(m.textCalls, req)
	return m.textFn(ctx, req)
}

func (m *stubModel) GenerateImage(ctx context.Context, req ports.ImageRequest) (*ports.ImageResponse, error) {
	return m.imageFn(ctx, req)
}

func textReply(text string, refs ...ports.GroundingReference) func(context.Context, ports.TextRequest) (*ports.TextResponse, error) {
	return func(context.Context, ports.TextRequest) (*ports.TextResponse, error) {
		return &ports.TextResponse{Text: text, References: refs}, nil
	}
}

var errTransport = errors.New("connection reset")

// ---------------------------------------------------------------------------
// Outline
// ---------------------------------------------------------------------------

func TestDraftService_GenerateOutline_ParsesHeadings(t *testing.T) {
	model := &stubModel{textFn: textReply(`["Intro", " Deep Dive ", "Wrap-up"]`)}
	svc := NewDraftService(model, discardLogger)

	got, err := svc.GenerateOutline(context.Background(), "Go generics")
	if err != nil {
		t.Fatalf("GenerateOutline: %v", err)
	}
	if got.Fallback {
		t.Fatalf("unexpected fallback")
	}
	if strings.Join(got.Headings, "|") != "Intro|Deep Dive|Wrap-up" {
		t.Fatalf("unexpected headings: %v", got.Headings)
	}
	if len(model.textCalls) != 1 || !model.textCalls[0].JSONStringArray || model.textCalls[0].SearchGrounding {
		t.Fatalf("unexpected request: %+v", model.textCalls)
	}
	if !strings.Contains(model.textCalls[0].Prompt, "Go generics") {
		t.Fatalf("prompt should mention topic: %q", model.textCalls[0].Prompt)
	}
}

func TestDraftService_GenerateOutline_FallsBackOnUnusablePayload(t *testing.T) {
	for _, payload := range []string{"not json", "", "[]", `[" ", ""]`, `{"a":1}`, `[1,2]`} {
		svc := NewDraftService(&stubModel{textFn: textReply(payload)}, discardLogger)

		got, err := svc.GenerateOutline(context.Background(), "topic")
		if err != nil {
			t.Fatalf("payload %q: unexpected error %v", payload, err)
		}
		if !got.Fallback || strings.Join(got.Headings, "|") != "Introduction|Trends|Best Practices|Conclusion" {
			t.Fatalf("payload %q: expected default outline, got %+v", payload, got)
		}
	}
}

func TestDraftService_GenerateOutline_FallbackIsACopy(t *testing.T) {
	svc := NewDraftService(&stubModel{textFn: textReply("nope")}, discardLogger)

	first, _ := svc.GenerateOutline(context.Background(), "topic")
	first.Headings[0] = "mutated"
	second, _ := svc.GenerateOutline(context.Background(), "topic")

	if second.Headings[0] != "Introduction" {
		t.Fatalf("default outline was mutated through a result: %v", second.Headings)
	}
}

func TestDraftService_GenerateOutline_TransportErrorPropagates(t *testing.T) {
	model := &stubModel{textFn: func(context.Context, ports.TextRequest) (*ports.TextResponse, error) {
		return nil, errTransport
	}}
	svc := NewDraftService(model, discardLogger)

	_, err := svc.GenerateOutline(context.Background(), "topic")
	if !errors.Is(err, domain.ErrGenerationFailed) || !errors.Is(err, errTransport) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestDraftService_GenerateOutline_BlankTopic(t *testing.T) {
	model := &stubModel{}
	svc := NewDraftService(model, discardLogger)

	if _, err := svc.GenerateOutline(context.Background(), "   "); !errors.Is(err, domain.ErrTopicRequired) {
		t.Fatalf("expected ErrTopicRequired, got %v", err)
	}
	if len(model.textCalls) != 0 {
		t.Fatalf("model must not be called for a blank topic")
	}
}

// ---------------------------------------------------------------------------
// Draft
// ---------------------------------------------------------------------------

func TestDraftService_GenerateDraft_SplitsKeywordLine(t *testing.T) {
	raw := "# Title\n\nBody paragraph.\nGo, Generics ,  Type Params"
	model := &stubModel{textFn: textReply(raw)}
	svc := NewDraftService(model, discardLogger)

	got, err := svc.GenerateDraft(context.Background(), "Go generics", []string{"Intro", "Outro"})
	if err != nil {
		t.Fatalf("GenerateDraft: %v", err)
	}
	if got.Content != "# Title\n\nBody paragraph." {
		t.Fatalf("unexpected content: %q", got.Content)
	}
	if strings.Join(got.Keywords, "|") != "Go|Generics|Type Params" {
		t.Fatalf("unexpected keywords: %q", got.Keywords)
	}
	if got.KeywordsFallback {
		t.Fatalf("unexpected fallback")
	}
	req := model.textCalls[0]
	if !req.SearchGrounding || req.JSONStringArray {
		t.Fatalf("draft request must enable grounding only: %+v", req)
	}
	if !strings.Contains(req.Prompt, "Intro, Outro") {
		t.Fatalf("prompt should carry the outline: %q", req.Prompt)
	}
}

func TestDraftService_GenerateDraft_NoCommaKeepsWholeText(t *testing.T) {
	raw := "Paragraph one.\n\nClosing thought without keywords"
	svc := NewDraftService(&stubModel{textFn: textReply(raw)}, discardLogger)

	got, err := svc.GenerateDraft(context.Background(), "Rust", nil)
	if err != nil {
		t.Fatalf("GenerateDraft: %v", err)
	}
	if got.Content != raw {
		t.Fatalf("expected raw text as content, got %q", got.Content)
	}
	if !got.KeywordsFallback || strings.Join(got.Keywords, "|") != "Rust|AI|Trending" {
		t.Fatalf("expected default keywords, got %+v", got)
	}
}

func TestDraftService_GenerateDraft_SingleLineWithComma(t *testing.T) {
	svc := NewDraftService(&stubModel{textFn: textReply("a, b")}, discardLogger)

	got, _ := svc.GenerateDraft(context.Background(), "t", nil)
	if got.Content != "" || strings.Join(got.Keywords, "|") != "a|b" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestDraftService_GenerateDraft_FiltersSources(t *testing.T) {
	model := &stubModel{textFn: textReply("body\nx, y",
		ports.GroundingReference{URI: "https://a.example", Title: "A"},
		ports.GroundingReference{URI: "", Title: "no uri"},
		ports.GroundingReference{URI: "https://b.example"},
	)}
	svc := NewDraftService(model, discardLogger)

	got, err := svc.GenerateDraft(context.Background(), "t", nil)
	if err != nil {
		t.Fatalf("GenerateDraft: %v", err)
	}
	if len(got.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %+v", got.Sources)
	}
	if got.Sources[0] != (domain.Source{URI: "https://a.example", Title: "A"}) {
		t.Fatalf("unexpected first source: %+v", got.Sources[0])
	}
	if got.Sources[1].Title != "Source" {
		t.Fatalf("missing title should default, got %+v", got.Sources[1])
	}
}

func TestDraftService_GenerateDraft_TransportErrorPropagates(t *testing.T) {
	model := &stubModel{textFn: func(context.Context, ports.TextRequest) (*ports.TextResponse, error) {
		return nil, errTransport
	}}
	svc := NewDraftService(model, discardLogger)

	if _, err := svc.GenerateDraft(context.Background(), "t", nil); !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Cover image
// ---------------------------------------------------------------------------

func TestDraftService_GenerateCoverImage_FirstInlineImage(t *testing.T) {
	var gotReq ports.ImageRequest
	model := &stubModel{imageFn: func(_ context.Context, req ports.ImageRequest) (*ports.ImageResponse, error) {
		gotReq = req
		return &ports.ImageResponse{Images: []ports.InlineImage{
			{MIMEType: "image/jpeg"},
			{MIMEType: "image/jpeg", Data: []byte("first")},
			{MIMEType: "image/png", Data: []byte("second")},
		}}, nil
	}}
	svc := NewDraftService(model, discardLogger)

	uri, ok := svc.GenerateCoverImage(context.Background(), "Mountains")
	if !ok {
		t.Fatalf("expected an image")
	}
	want := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("first"))
	if uri != want {
		t.Fatalf("expected %q, got %q", want, uri)
	}
	if gotReq.AspectRatio != "16:9" || !strings.Contains(gotReq.Prompt, "Mountains") {
		t.Fatalf("unexpected request: %+v", gotReq)
	}
}

func TestDraftService_GenerateCoverImage_DefaultsMIME(t *testing.T) {
	model := &stubModel{imageFn: func(context.Context, ports.ImageRequest) (*ports.ImageResponse, error) {
		return &ports.ImageResponse{Images: []ports.InlineImage{{Data: []byte{1, 2}}}}, nil
	}}
	uri, ok := NewDraftService(model, discardLogger).GenerateCoverImage(context.Background(), "t")
	if !ok || !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("unexpected uri %q ok=%v", uri, ok)
	}
}

func TestDraftService_GenerateCoverImage_SwallowsFailures(t *testing.T) {
	cases := map[string]func(context.Context, ports.ImageRequest) (*ports.ImageResponse, error){
		"error": func(context.Context, ports.ImageRequest) (*ports.ImageResponse, error) {
			return nil, errTransport
		},
		"nil response": func(context.Context, ports.ImageRequest) (*ports.ImageResponse, error) {
			return nil, nil
		},
		"no images": func(context.Context, ports.ImageRequest) (*ports.ImageResponse, error) {
			return &ports.ImageResponse{}, nil
		},
	}
	for name, fn := range cases {
		svc := NewDraftService(&stubModel{imageFn: fn}, discardLogger)
		uri, ok := svc.GenerateCoverImage(context.Background(), "t")
		if ok || uri != "" {
			t.Fatalf("%s: expected no image, got %q", name, uri)
		}
	}
}

// ---------------------------------------------------------------------------
// Compose
// ---------------------------------------------------------------------------

func TestDraftService_ComposeDraft_RunsStagesInOrder(t *testing.T) {
	model := &stubModel{textFn: func(_ context.Context, req ports.TextRequest) (*ports.TextResponse, error) {
		if req.JSONStringArray {
			return &ports.TextResponse{Text: `["One","Two"]`}, nil
		}
		return &ports.TextResponse{Text: "Body\nk1, k2"}, nil
	}}
	svc := NewDraftService(model, discardLogger)

	got, err := svc.ComposeDraft(context.Background(), "topic")
	if err != nil {
		t.Fatalf("ComposeDraft: %v", err)
	}
	if len(model.textCalls) != 2 || !model.textCalls[0].JSONStringArray || !model.textCalls[1].SearchGrounding {
		t.Fatalf("unexpected call sequence: %+v", model.textCalls)
	}
	if !strings.Contains(model.textCalls[1].Prompt, "One, Two") {
		t.Fatalf("draft prompt should use generated outline: %q", model.textCalls[1].Prompt)
	}
	if got.Draft.Content != "Body" || strings.Join(got.Outline.Headings, "|") != "One|Two" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestDraftService_ComposeDraft_AbortsOnOutlineFailure(t *testing.T) {
	model := &stubModel{textFn: func(context.Context, ports.TextRequest) (*ports.TextResponse, error) {
		return nil, errTransport
	}}
	svc := NewDraftService(model, discardLogger)

	got, err := svc.ComposeDraft(context.Background(), "topic")
	if err == nil || got != nil {
		t.Fatalf("expected failure without partial result, got %+v err=%v", got, err)
	}
	if len(model.textCalls) != 1 {
		t.Fatalf("draft stage must not run after outline failure, calls=%d", len(model.textCalls))
	}
}
