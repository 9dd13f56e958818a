package hierarchy

// Library is the static, read-only mapping from a qualified builtin
// name to its direct supertypes (predefined classes, iterables,
// throwables, standard-library containers, iterators, exceptions, file
// objects — spec §3). It is safe to share across concurrent file
// invocations (spec §5).
type Library map[string][]string

// DefaultLibrary is the builtin hierarchy this analyzer ships with. A
// host can extend or override it via config (spec.md §6 configuration,
// SPEC_FULL.md §2.3).
var DefaultLibrary = Library{
	// Core interfaces
	`\Traversable`:       {"iterable"},
	`\Iterator`:          {`\Traversable`},
	`\IteratorAggregate`: {`\Traversable`},
	`\ArrayAccess`:       {},
	`\Countable`:         {},
	`\Stringable`:        {},
	`\JsonSerializable`:  {},
	`\Serializable`:      {},

	// Core classes
	`\stdClass`:     {},
	`\Closure`:      {},
	`\Generator`:    {`\Iterator`},
	`\WeakReference`: {},
	`\WeakMap`:      {`\Countable`, `\ArrayAccess`, `\IteratorAggregate`},
	`\ArrayIterator`: {`\Iterator`, `\ArrayAccess`, `\Countable`, `\Serializable`},
	`\ArrayObject`:  {`\IteratorAggregate`, `\ArrayAccess`, `\Countable`, `\Serializable`},

	// Throwables
	`\Throwable`:                 {`\Stringable`},
	`\Exception`:                 {`\Throwable`, `\Stringable`},
	`\Error`:                     {`\Throwable`, `\Stringable`},
	`\TypeError`:                 {`\Error`},
	`\ValueError`:                {`\Error`},
	`\ArithmeticError`:           {`\Error`},
	`\DivisionByZeroError`:       {`\ArithmeticError`},
	`\AssertionError`:            {`\Error`},
	`\UnhandledMatchError`:       {`\Error`},
	`\ErrorException`:            {`\Exception`},
	`\RuntimeException`:          {`\Exception`},
	`\LogicException`:            {`\Exception`},
	`\InvalidArgumentException`:  {`\LogicException`},
	`\DomainException`:          {`\LogicException`},
	`\LengthException`:          {`\LogicException`},
	`\OutOfRangeException`:      {`\LogicException`},
	`\OutOfBoundsException`:     {`\RuntimeException`},
	`\RangeException`:           {`\RuntimeException`},
	`\OverflowException`:        {`\RuntimeException`},
	`\UnderflowException`:       {`\RuntimeException`},
	`\UnexpectedValueException`: {`\RuntimeException`},
	`\JsonException`:            {`\Exception`},

	// SPL containers / iterators
	`\SplDoublyLinkedList`: {`\Iterator`, `\Countable`, `\ArrayAccess`},
	`\SplStack`:            {`\SplDoublyLinkedList`},
	`\SplQueue`:            {`\SplDoublyLinkedList`},
	`\SplFixedArray`:       {`\Iterator`, `\ArrayAccess`, `\Countable`},
	`\SplObjectStorage`:    {`\Countable`, `\Iterator`, `\ArrayAccess`, `\Serializable`},
	`\SplHeap`:             {`\Iterator`, `\Countable`},
	`\SplMinHeap`:          {`\SplHeap`},
	`\SplMaxHeap`:          {`\SplHeap`},
	`\SplPriorityQueue`:    {`\Iterator`, `\Countable`},

	// Filesystem
	`\SplFileInfo`:       {},
	`\SplFileObject`:     {`\SplFileInfo`, `\Iterator`, `\ArrayAccess`},
	`\SplTempFileObject`: {`\SplFileObject`},
	`\DirectoryIterator`: {`\SplFileInfo`, `\Iterator`},

	// Reflection
	`\ReflectionClass`:    {},
	`\ReflectionFunction`: {},
	`\ReflectionMethod`:   {},
}
