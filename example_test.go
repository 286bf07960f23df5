package settle_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/abevier/settle"
	"github.com/abevier/settle/futures"
)

func ExampleTo() {
	f := futures.FromFunc(func() (string, error) {
		return "success", nil
	})

	tup, _ := settle.To[error](f).Get(context.Background())
	if err, failed := tup.Err(); failed {
		fmt.Println("failed:", err)
		return
	}

	v, _ := tup.Val()
	fmt.Println(v)
	// Output: success
}

func ExampleTo_failure() {
	f := futures.FromFunc(func() (int, error) {
		return 0, errors.New("test error")
	})

	tup, _ := settle.To[error](f, settle.OnFailure(func() {
		fmt.Println("observed failure")
	})).Get(context.Background())

	fmt.Println(tup)
	// Output:
	// observed failure
	// (test error, <absent>)
}

func ExampleDo() {
	f := futures.New[int]()
	f.Reject("string error")

	tup, _ := settle.Do[any](context.Background(), f)

	reason, _ := tup.Err()
	fmt.Println(reason)
	// Output: string error
}
