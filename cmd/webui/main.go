//go:build js && wasm

// Command webui is the WASM build of the reservation site's page behaviors:
//
//	GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/webui
package main

import (
	"syscall/js"

	"github.com/muhammadheryan/railway-reservation/utils/logger"
	validatorx "github.com/muhammadheryan/railway-reservation/utils/validator"
	"github.com/muhammadheryan/railway-reservation/webui"
	"github.com/muhammadheryan/railway-reservation/webui/jsdom"
	"go.uber.org/zap"
)

func main() {
	if err := logger.Init("webui", "production"); err != nil {
		panic(err)
	}
	validatorx.Init()

	doc := jsdom.New()
	opts := []webui.Option{}
	// pages that talk to a live backend set window.RAILWAY_API_URL
	if api := js.Global().Get("RAILWAY_API_URL"); api.Type() == js.TypeString && api.String() != "" {
		opts = append(opts, webui.WithResponder(webui.NewRemoteResponder(api.String())))
	}

	page := webui.NewPage(doc, opts...)
	doc.Ready(func() {
		mounted := page.Mount()
		logger.Info("page behaviors mounted", zap.Strings("behaviors", mounted))
	})

	unload := js.FuncOf(func(js.Value, []js.Value) interface{} {
		page.Unmount()
		return nil
	})
	defer unload.Release()
	js.Global().Call("addEventListener", "pagehide", unload)

	select {}
}
