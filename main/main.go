package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/bstr"
	"github.com/rawbytedev/bstr/pkg/pool"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	bstr.SetAllocator(pool.New())
	payload := []byte("Le grand orchestre de Patato Valdez")
	for i := 0; i < 10000; i++ {
		owner, _ := bstr.NewCopy(payload)
		ref, _ := owner.ViewSlice(22, 13)
		owner.Append([]byte(" et son combo"))
		ref.Free()
		owner.Free()

		short, _ := bstr.NewCopy(payload[:3])
		short.Append([]byte("jour"))
		short.Free()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
