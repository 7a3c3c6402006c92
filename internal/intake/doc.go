// Package intake turns decoded QR codes into queue items.
//
// It is the only path from the scanner to the queue store: Enqueue builds an
// item from one scan result and ScanFiles decodes a batch of images with a
// bounded worker pool. Images that hold no readable code are reported per
// file; a store failure stops the batch.
package intake
