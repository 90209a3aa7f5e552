package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wilhasse/dynarray-go/vec"
)

func main() {
	churn := flag.Int("churn", 0, "Extra elements to append and pop-front to show growth and shrink")
	flag.Parse()

	a, err := vec.New[int](2)
	if err != nil {
		exitErr("create", err)
	}
	report(a)

	for _, val := range []int{10, 20, 30} {
		if err := a.Append(val); err != nil {
			exitErr("append", err)
		}
		report(a)
	}

	if err := a.Set(1, 15); err != nil {
		exitErr("set", err)
	}
	report(a)

	if _, err := a.PopBack(); err != nil {
		exitErr("popBack", err)
	}
	report(a)

	if *churn > 0 {
		for i := 0; i < *churn; i++ {
			if err := a.Append(i); err != nil {
				exitErr("append", err)
			}
		}
		fmt.Printf("after %d appends:\n", *churn)
		report(a)

		for a.Len() > 2 {
			if _, err := a.PopFront(); err != nil {
				exitErr("popFront", err)
			}
		}
		fmt.Printf("after popFront back down to %d:\n", a.Len())
		report(a)
	}

	a.Free()
}

func report(a *vec.Vec[int]) {
	info := a.Info()
	fmt.Printf("Array:%s\n", a)
	fmt.Printf("ArrayInfo:{length = %d, capacity = %d, data = %p}\n\n",
		info.Length, info.Capacity, info.Data)
}

func exitErr(op string, err error) {
	fmt.Fprintf(os.Stderr, "arraydemo: %s: %v\n", op, err)
	os.Exit(1)
}
