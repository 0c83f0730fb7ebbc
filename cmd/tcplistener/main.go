package main

import (
	"flag"
	"fmt"
	"net"

	"github.com/tekbug/http-server/internal/request"
	"github.com/tekbug/http-server/internal/response"
)

// Debug tool: accepts connections, dumps the parsed request, and answers
// with a fixed 200.
func main() {
	port := flag.Uint("port", 42069, "TCP port to listen on")
	flag.Parse()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		fmt.Println("Listen error:", err)
		return
	}
	defer listener.Close()
	fmt.Printf("Listening on port %d...\n", *port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			fmt.Println("Accept error:", err)
			continue
		}

		go handleConnection(conn)
	}
}

func handleConnection(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, 64<<10)
	n, err := conn.Read(buf)
	if err != nil {
		fmt.Println("Read error:", err)
		return
	}

	req, err := request.Parse(buf[:n])
	if err != nil {
		fmt.Println("Parse error:", err)
		conn.Write(response.Render(response.StatusBadRequest, "BAD REQUEST"))
		return
	}

	fmt.Println("Request Line")
	fmt.Printf("Method: %s\n", req.Method)
	fmt.Printf("Path: %s\n", req.Path)
	fmt.Printf("Version: %s\n", req.Version)
	fmt.Println("Headers")
	for key, value := range req.Headers.GetAllHeaders() {
		fmt.Printf("%s: %s\n", key, value)
	}
	fmt.Println("Body")
	fmt.Println(req.Body)

	conn.Write(response.Render(response.StatusOK, "Hello from your HTTP server!\n"))
}
