package a

import (
	"fmt"
	"log" // want "standard log package is forbidden here, use zap"
)

func Hello() {
	fmt.Println("hello")
	log.Println("hello")
}
