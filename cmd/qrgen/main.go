// Command qrgen renders a PromptPay EMV-QR payload to a PNG, for testing the
// QR verification flow with a real phone camera.
//
// Usage:
//
//	qrgen -out qr.png "00020101021226400016A00000067701011101020102100812345678..."
package main

import (
	"flag"
	"fmt"
	"os"

	qrcode "github.com/skip2/go-qrcode"

	"truadboon/internal/promptpay"
)

func main() {
	out := flag.String("out", "qr.png", "output PNG path")
	size := flag.Int("size", 256, "image size in pixels")
	flag.Parse()

	payload := flag.Arg(0)
	if payload == "" {
		fmt.Fprintln(os.Stderr, "usage: qrgen [-out qr.png] [-size 256] <payload>")
		os.Exit(2)
	}

	// Show what a scanner would resolve before writing the image.
	ident := promptpay.DecodeAndClassify(payload)
	fmt.Printf("identifier: %q type: %s\n", ident.Value, ident.Type)
	if name := promptpay.Name(payload); name != "" {
		fmt.Printf("name: %s\n", name)
	}

	if err := qrcode.WriteFile(payload, qrcode.Medium, *size, *out); err != nil {
		fmt.Fprintf(os.Stderr, "write qr: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
