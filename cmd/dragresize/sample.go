package main

import "github.com/Gaurav-Gosain/dragresize/internal/document"

func sampleLayout() ([]byte, error) {
	return document.Sample().Marshal()
}
