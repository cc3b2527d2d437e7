// Command tnfs-cli is a small command-line demo of the tnfs client library:
// mount a server, list a directory, fetch or push a file, or print stat
// and volume info.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tnfs "github.com/Fbeen/tnfs-client"
)

func main() {
	host := flag.String("host", "", "TNFS server host or IP")
	port := flag.Int("port", tnfs.DefaultPort, "TNFS server port")
	mountDir := flag.String("mount", "/", "Directory to mount")
	user := flag.String("user", "", "Mount username")
	pass := flag.String("pass", "", "Mount password")
	useTCP := flag.Bool("tcp", false, "Use TCP transport instead of UDP")
	timeout := flag.Duration("timeout", tnfs.DefaultTimeout, "Request timeout")
	cmd := flag.String("cmd", "ls", "ls, get, put, stat, df")
	path := flag.String("path", "/", "Remote path for ls/stat")
	local := flag.String("local", "", "Local file path for get/put")
	remote := flag.String("remote", "", "Remote file path for get/put")
	flag.Parse()

	if *host == "" {
		fmt.Println("Usage: tnfs-cli -host IP [-port 16384] -cmd ls|get|put|stat|df [...]")
		os.Exit(2)
	}

	opts := []tnfs.ClientOption{tnfs.WithTimeout(*timeout)}
	if *useTCP {
		opts = append(opts, tnfs.WithTCP())
	}

	c, err := tnfs.NewClient(*host, *port, opts...)
	if err != nil {
		fmt.Println("connect error:", err)
		os.Exit(1)
	}
	defer c.Close()

	if err := c.Mount(*mountDir, *user, *pass); err != nil {
		fmt.Println("mount error:", err)
		os.Exit(1)
	}

	switch *cmd {
	case "ls":
		runLs(c, *path)
	case "stat":
		runStat(c, *path)
	case "df":
		runDf(c)
	case "get":
		runGet(c, *remote, *local)
	case "put":
		runPut(c, *local, *remote)
	default:
		fmt.Println("unknown -cmd:", *cmd)
		os.Exit(2)
	}
}

func runLs(c *tnfs.Client, path string) {
	stream, err := c.OpenDirX(path, "", 0, 0)
	if err != nil {
		fmt.Println("opendirx error:", err)
		os.Exit(1)
	}
	defer stream.Close()

	fmt.Printf("%d entries in %s:\n", stream.Total(), path)
	for {
		entry, err := stream.Next()
		if err == tnfs.ErrEOF {
			break
		}
		if err != nil {
			fmt.Println("readdirx error:", err)
			os.Exit(1)
		}
		kind := "-"
		if entry.IsDir() {
			kind = "d"
		}
		fmt.Printf("  %s %10d  %s\n", kind, entry.Size, entry.Name)
	}
}

func runStat(c *tnfs.Client, path string) {
	st, err := c.Stat(path)
	if err != nil {
		fmt.Println("stat error:", err)
		os.Exit(1)
	}
	fmt.Printf("mode=%#o uid=%d(%s) gid=%d(%s) size=%d mtime=%s\n",
		st.Mode, st.UID, st.UIDName, st.GID, st.GIDName, st.Size,
		time.Unix(int64(st.Mtime), 0).UTC())
}

func runDf(c *tnfs.Client) {
	total, err := c.Size()
	if err != nil {
		fmt.Println("size error:", err)
		os.Exit(1)
	}
	free, err := c.Free()
	if err != nil {
		fmt.Println("free error:", err)
		os.Exit(1)
	}
	fmt.Printf("total=%d KB free=%d KB\n", total, free)
}

func runGet(c *tnfs.Client, remote, local string) {
	if remote == "" || local == "" {
		fmt.Println("get requires -remote and -local")
		os.Exit(2)
	}
	f, err := c.Open(remote, tnfs.ORDONLY, 0)
	if err != nil {
		fmt.Println("open error:", err)
		os.Exit(1)
	}
	defer f.Close()

	out, err := os.Create(local)
	if err != nil {
		fmt.Println("create error:", err)
		os.Exit(1)
	}
	defer out.Close()

	buf := make([]byte, 4096)
	var total int64
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				fmt.Println("write error:", werr)
				os.Exit(1)
			}
			total += int64(n)
		}
		if err != nil || n == 0 {
			break
		}
	}
	fmt.Printf("fetched %d bytes to %s\n", total, local)
}

func runPut(c *tnfs.Client, local, remote string) {
	if local == "" || remote == "" {
		fmt.Println("put requires -local and -remote")
		os.Exit(2)
	}
	in, err := os.Open(local)
	if err != nil {
		fmt.Println("open error:", err)
		os.Exit(1)
	}
	defer in.Close()

	f, err := c.Open(remote, tnfs.OWRONLY|tnfs.OCREAT|tnfs.OTRUNC, 0644)
	if err != nil {
		fmt.Println("remote open error:", err)
		os.Exit(1)
	}
	defer f.Close()

	buf := make([]byte, 4096)
	var total int64
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if _, werr := f.Write(buf[:n]); werr != nil {
				fmt.Println("write error:", werr)
				os.Exit(1)
			}
			total += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			fmt.Println("read error:", rerr)
			os.Exit(1)
		}
	}
	fmt.Printf("pushed %d bytes to %s\n", total, remote)
}
